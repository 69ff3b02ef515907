package contact

// Config holds the addresses used for contact e-mails.
type Config struct {
	From string
	To   string
}

type SubmitInput struct {
	Name    string
	Email   string
	Message string
}

type SubmitOutput struct {
	ID string
}
