package internal

// NoCopy marks a struct as unique hardware state. `go vet` reports
// copies of any struct embedding it through the copylocks check.
type NoCopy struct{}

func (*NoCopy) Lock()   {}
func (*NoCopy) Unlock() {}
