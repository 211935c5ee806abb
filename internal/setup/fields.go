package setup

// Field is a single configuration value collected during a session.
type Field struct {
	Key     string
	Prompt  string
	Default string
	// Options, when non-empty, restricts the value to an enumerated set and
	// lets form mode present a picker instead of a text input.
	Options  []string
	Validate Validator
	// Optional fields may be absent from a finished file entirely.
	Optional bool
	// Secret fields mask their echo while the operator types.
	Secret bool
}

// Section groups related fields under one comment header.
type Section struct {
	Name   string
	Fields []Field
}

// Keys used by the session flow for fields that are not plain prompts.
const (
	KeyJWTSecret        = "JWT_SECRET"
	KeyDynamoDBEndpoint = "DYNAMODB_ENDPOINT"
)

// Sections returns the canonical field catalog in output order. Every
// default here passes its own validator.
func Sections() []Section {
	return []Section{
		{
			Name: "JWT Configuration",
			Fields: []Field{
				{Key: KeyJWTSecret, Prompt: "Enter JWT secret (minimum 32 characters)", Validate: MinLen(32), Secret: true},
				{Key: "JWT_EXPIRES_IN", Prompt: "JWT access token expiration", Default: "30m"},
				{Key: "JWT_REFRESH_EXPIRES_IN", Prompt: "JWT refresh token expiration", Default: "7d"},
				{Key: "JWT_ISSUER", Prompt: "JWT issuer", Default: "class-registration-app"},
				{Key: "JWT_AUDIENCE", Prompt: "JWT audience", Default: "class-registration-users"},
			},
		},
		{
			Name: "AWS Configuration",
			Fields: []Field{
				{Key: "AWS_ACCESS_KEY_ID", Prompt: "AWS Access Key ID", Validate: Required},
				{Key: "AWS_SECRET_ACCESS_KEY", Prompt: "AWS Secret Access Key", Validate: Required, Secret: true},
				{Key: "AWS_REGION", Prompt: "AWS Region", Default: "us-east-1"},
			},
		},
		{
			Name: "Application Configuration",
			Fields: []Field{
				{
					Key:      "NODE_ENV",
					Prompt:   "Node environment",
					Default:  "development",
					Options:  []string{"development", "production", "test"},
					Validate: OneOf("development", "production", "test"),
				},
				{Key: "PORT", Prompt: "Server port", Default: "3000", Validate: ValidatePort},
				{Key: "FRONTEND_URL", Prompt: "Frontend URL", Default: "http://localhost:3001", Validate: ValidateURL},
			},
		},
		{
			Name: "Security Configuration",
			Fields: []Field{
				{Key: "BCRYPT_SALT_ROUNDS", Prompt: "Bcrypt salt rounds (recommended: 14)", Default: "14", Validate: IntBetween(10, 20)},
				{Key: "RATE_LIMIT_WINDOW_MS", Prompt: "Rate limit window in milliseconds", Default: "900000", Validate: NonNegativeInt},
				{Key: "RATE_LIMIT_MAX_REQUESTS", Prompt: "Maximum requests per window", Default: "100", Validate: NonNegativeInt},
				{Key: "AUTH_RATE_LIMIT_MAX", Prompt: "Maximum auth attempts per window", Default: "5", Validate: NonNegativeInt},
			},
		},
		{
			Name: "CORS Configuration",
			Fields: []Field{
				{Key: "ALLOWED_ORIGINS", Prompt: "Allowed origins (comma-separated)", Default: "http://localhost:3001,http://localhost:3000"},
			},
		},
		{
			Name: "Database Configuration",
			Fields: []Field{
				{Key: KeyDynamoDBEndpoint, Prompt: "DynamoDB endpoint URL", Default: "http://localhost:8000", Validate: ValidateURL, Optional: true},
			},
		},
	}
}

// Record holds collected values keyed by field name, preserving the order
// in which keys were first set.
type Record struct {
	values map[string]string
	order  []string
}

func NewRecord() *Record {
	return &Record{values: make(map[string]string)}
}

// Set stores a value, appending the key to the order on first sight.
func (r *Record) Set(key, value string) {
	if _, ok := r.values[key]; !ok {
		r.order = append(r.order, key)
	}
	r.values[key] = value
}

// Get returns the stored value and whether the key has been set.
func (r *Record) Get(key string) (string, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Keys returns the set keys in insertion order.
func (r *Record) Keys() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len reports how many fields have been set.
func (r *Record) Len() int { return len(r.order) }
