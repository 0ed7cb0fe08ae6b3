package messages

// Hello is sent by a client after connecting. Observers that never send
// it still receive snapshots.
type Hello struct {
	Version string
	Name    string
}
