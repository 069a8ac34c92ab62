package dcodec

func Copy(stored []byte, _ int) ([]byte, error) {
	out := make([]byte, len(stored))
	copy(out, stored)
	return out, nil
}
