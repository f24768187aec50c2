package entity

// SignalTypeOption is one entry of the allow-listed signal-type catalog that
// downstream classification may emit.
type SignalTypeOption struct {
	Id          int64
	Name        string
	Description string
}
