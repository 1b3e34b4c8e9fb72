package collabkit

// PostInc increments the value at v and returns its previous value.
func PostInc(v *int) int {
	prev := *v
	*v++
	return prev
}
