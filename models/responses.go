package models

// TokenResponse is the body returned by the register and login endpoints.
type TokenResponse struct {
	// AccessToken is the compact signed JWT the client presents as a
	// bearer credential on protected endpoints.
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer".
	TokenType string `json:"token_type"`
}

// NotesResponse contains every note that belongs to the requesting user,
// in insertion order.
type NotesResponse struct {
	// Notes is the list of the user's notes.
	Notes []Note `json:"notes"`

	// Length is the total number of entries in Notes.
	// Provided for convenience so the client can pre-allocate
	// or validate the response without iterating the slice.
	Length int `json:"length"`
}
