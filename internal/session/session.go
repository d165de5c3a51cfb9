package session

// Session holds the process-wide authentication state. There is exactly one
// instance, owned by the application and passed to controllers; the setter
// methods are the only write path.
type Session struct {
	token    string
	userID   int
	userName string
}

// New creates an unauthenticated Session.
func New() *Session {
	return &Session{}
}

// SetToken installs the bearer token.
func (s *Session) SetToken(token string) {
	s.token = token
}

// SetUser records the authenticated user's identity.
func (s *Session) SetUser(id int, name string) {
	s.userID = id
	s.userName = name
}

// Clear drops all authentication state.
func (s *Session) Clear() {
	s.token = ""
	s.userID = 0
	s.userName = ""
}

// Token returns the bearer token, or "" when unauthenticated.
func (s *Session) Token() string {
	return s.token
}

// Authenticated reports whether a token is present.
func (s *Session) Authenticated() bool {
	return s.token != ""
}

// UserID returns the current user's ID, or 0 before login.
func (s *Session) UserID() int {
	return s.userID
}

// UserName returns the current user's display name.
func (s *Session) UserName() string {
	return s.userName
}
