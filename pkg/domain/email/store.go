package email

// Store holds the last submitted email as JSON text, so a non-string email
// keeps its type. There is exactly one slot: every Set replaces it and
// nothing ever clears it.
type Store interface {
	Set(value string)
	Get() (string, bool)
}
