package helpers

// Errors is the shared error body every handler renders; codes carry the
// "market.order.*" / "server.*" naming used across the API.
type Errors struct {
	Errors []string `json:"errors"`
}

func (e Errors) Size() int {
	return len(e.Errors)
}

func (e *Errors) Add(code string) {
	e.Errors = append(e.Errors, code)
}
