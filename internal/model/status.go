package model

// Statuses is the order a status cell moves through when activated. The empty
// string means "not set".
var Statuses = []string{"Done", "Working On It", "Stuck", ""}

// NextStatus returns the status after current. Values outside the cycle
// restart it at "Done".
func NextStatus(current string) string {
	for i, s := range Statuses {
		if s == current {
			return Statuses[(i+1)%len(Statuses)]
		}
	}
	return Statuses[0]
}
