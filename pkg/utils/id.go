package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// SnapshotIDLength é o tamanho dos IDs curtos usados para identificar cargas
const SnapshotIDLength = 6

// GenerateID gera um ID alfanumérico curto para identificar um snapshot nos logs
// e nas respostas da API
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, SnapshotIDLength)
}
