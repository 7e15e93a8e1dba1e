package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um id alfanumérico curto, usado como id de execução dos jobs
func GenerateID(length int) (string, error) {
	return gonanoid.Generate(characters, length)
}
