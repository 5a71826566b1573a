package repository

// Credential is the role-independent view of an account that the auth
// flow needs. Student, tutor and admin repositories all expose it so a
// single auth service can serve the three roles.
type Credential struct {
	ID           uint
	Email        string
	PasswordHash string
	IsBlocked    bool
}

type CredentialStore interface {
	CredentialByEmail(email string) (*Credential, error)
	CredentialByID(id uint) (*Credential, error)
}
