package Sets

// Set of unique elements. Insert and Erase are idempotent: they return
// whether the set changed.
type Set[E any] interface {
	Insert(E) bool
	Erase(E) bool
	Has(E) bool
	Size() uint
	Empty() bool
	//Range calls f on every element until f returns false. Ordered sets call it in ascending order.
	Range(f func(E) bool)
}

// InsertAll inserts every element of src into dst and returns the number inserted.
func InsertAll[E any](dst, src Set[E]) (n uint) {
	src.Range(func(e E) bool {
		if dst.Insert(e) {
			n++
		}
		return true
	})
	return
}
