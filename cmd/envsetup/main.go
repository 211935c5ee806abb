// Command envsetup interactively collects deployment configuration for
// the class registration backend and writes it to a grouped .env file.
package main

func main() {
	Execute()
}
