package simpleargs

// Iterate calls yield for each remaining classified argument, in order,
// until the stream ends or yield returns false. The terminating KindEnd
// token itself is not yielded.
func (a *Args) Iterate(yield func(arg Arg) bool) {
	for {
		arg := a.Next()
		if arg.Kind == KindEnd {
			return
		}
		if !yield(arg) {
			return
		}
	}
}
