package utils

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// VerifyAdminPassword compara a senha digitada com a configurada.
// ADMIN_PASSWORD pode ser texto puro (comparação em tempo constante)
// ou um hash argon2id no formato $argon2id$v=19$m=...,t=...,p=...$salt$hash.
func VerifyAdminPassword(password, configured string) bool {
	if strings.HasPrefix(configured, "$argon2id$") {
		ok, err := verifyArgon2(password, configured)
		return err == nil && ok
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(configured)) == 1
}

func verifyArgon2(password, encodedHash string) (bool, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 {
		return false, fmt.Errorf("hash argon2 inválido")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false, err
	}

	var memory, iterations uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &threads); err != nil {
		return false, err
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, err
	}
	hash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, err
	}

	other := argon2.IDKey([]byte(password), salt, iterations, memory, threads, uint32(len(hash)))
	return subtle.ConstantTimeCompare(hash, other) == 1, nil
}
