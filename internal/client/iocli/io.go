// Package iocli is the terminal seam of the lumina CLI. Commands talk to
// IO only, so tests drive them with in-memory buffers or the generated mock.
package iocli

//go:generate moq -out io_mock.go . IO

type IO interface {
	// Write делает IO пригодным как io.Writer для cobra и tabwriter
	Write(p []byte) (n int, err error)
	Println(a ...any)
	Printf(format string, a ...any)

	// ReadInput печатает prompt и возвращает строку без перевода строки
	ReadInput(prompt string) (string, error)
	// ReadPassword читает без эха, если stdin терминал
	ReadPassword(prompt string) (string, error)
}
