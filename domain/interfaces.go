package domain

import "context"

// UserRepository defines user data access operations.
// Soft-deleted users are invisible to every method.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
}

// ProfileRepository defines profile data access operations
type ProfileRepository interface {
	// FindByUserID returns the profile joined with the owner's email. A user
	// without a stored profile yields a Profile with only UserID and Email set.
	FindByUserID(ctx context.Context, userID string) (*Profile, error)
	Upsert(ctx context.Context, userID string, update *ProfileUpdate) error
}

// ActivityTypeRepository reads the static activity-type catalog
type ActivityTypeRepository interface {
	FindByName(ctx context.Context, name string) (*ActivityType, error)
	FindByID(ctx context.Context, id uint) (*ActivityType, error)
}

// ActivityRepository defines activity data access operations. Every method
// is scoped to the owner and excludes soft-deleted rows.
type ActivityRepository interface {
	Create(ctx context.Context, activity *Activity) error
	FindOwned(ctx context.Context, id uint, userID string) (*Activity, error)
	Update(ctx context.Context, activity *Activity) error
	SoftDelete(ctx context.Context, id uint, userID string) error
	List(ctx context.Context, userID string, filter ActivityFilter) ([]Activity, error)
}

// AuthService defines authentication business logic
type AuthService interface {
	Register(ctx context.Context, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}

// ActivityService defines activity business rules
type ActivityService interface {
	Create(ctx context.Context, userID string, in NewActivity) (*Activity, error)
	Update(ctx context.Context, userID string, id uint, patch ActivityPatch) (*Activity, error)
	Delete(ctx context.Context, userID string, id uint) error
	List(ctx context.Context, userID string, filter ActivityFilter) ([]Activity, error)
}

// ProfileService defines profile business rules
type ProfileService interface {
	Get(ctx context.Context, userID string) (*Profile, error)
	Replace(ctx context.Context, userID string, update ProfileUpdate) (*Profile, error)
}

// UploadService validates inbound files and stores them
type UploadService interface {
	Upload(ctx context.Context, file FileUpload) (string, error)
}

// ObjectStorage stores blobs and returns their public URI
type ObjectStorage interface {
	Put(ctx context.Context, objectName, contentType string, data []byte) (string, error)
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines session token operations
type TokenService interface {
	Generate(subject, email string) (string, error)
	Decode(token string) (*TokenClaims, error)
}

// AuthGuard resolves an Authorization header value to a verified identity
type AuthGuard interface {
	Authenticate(ctx context.Context, authorization string) (*Identity, error)
}

// TokenClaims represents decoded session token claims
type TokenClaims struct {
	Subject   string   `json:"sub"`
	Email     string   `json:"email"`
	Issuer    string   `json:"iss"`
	Audience  []string `json:"aud"`
	IssuedAt  int64    `json:"iat"`
	ExpiresAt int64    `json:"exp"`
}
