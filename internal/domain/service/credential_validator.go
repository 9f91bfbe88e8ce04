package service

// CredentialValidator checks raw registration and login input against the format policy.
// An empty result means the input is acceptable.
type CredentialValidator interface {
	ValidateRegistration(username, password string) []string
	ValidateLogin(username, password string) []string
}
