package ptr

// Ptr возвращает указатель на копию v. Удобно для необязательных параметров методов.
func Ptr[T any](v T) *T {
	return &v
}

func PtrGet[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}

	return *v
}
