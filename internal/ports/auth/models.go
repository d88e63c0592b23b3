package auth

// Claims representa la identidad extraída de un bearer token.
// Name es el nombre visible que luego se adjunta como "personnelName".
type Claims struct {
	UserID string
	Name   string
	Email  string
	Role   string
}
