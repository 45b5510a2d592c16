package scheduling

// ValidShiftCapacity is the capacity policy relating a shift to its
// owning center: a shift must hold at least one seat and never more
// than the center itself.  It is evaluated against the center capacity
// read at validation time, both at shift creation and on any later
// capacity update, so a shrunken center immediately constrains new
// shifts.
func ValidShiftCapacity(centerCapacity, shiftCapacity int) bool {
	if shiftCapacity <= 0 {
		return false
	}
	return shiftCapacity <= centerCapacity
}
