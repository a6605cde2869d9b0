package entities

// DeliveryResult is the outcome of one notification send attempt.
// Sends are independent per destination; failures here never change the
// primary request outcome.
type DeliveryResult struct {
	Phone string
	Err   error
}

// Failed reports whether the send attempt failed
func (d DeliveryResult) Failed() bool {
	return d.Err != nil
}
