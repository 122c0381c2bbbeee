package models

// Session is the application's auth state. UserID is opaque and stable for
// the process lifetime; Ready transitions false to true exactly once, whether
// or not sign-in succeeded.
type Session struct {
	UserID string `json:"userId,omitempty"`
	Ready  bool   `json:"ready"`
}
