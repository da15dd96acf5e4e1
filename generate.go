package variant

//go:generate go run ./cmd/variantgen -min 2 -max 6 -out variant_gen.go
