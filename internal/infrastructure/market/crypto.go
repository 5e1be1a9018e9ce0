package market

import (
	"bytes"
	"crypto/aes"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"math/big"
	"os"

	"ahoy_market/internal/domain"
	"ahoy_market/pkg/errcodes"
)

const (
	contentKeyLen = 16
	alphanumeric  = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	pemBlockType  = "PUBLIC KEY"
)

// Encrypter seals buy payloads the way the vendor expects: the JSON payload
// is encrypted with a random AES-128 key in ECB mode with PKCS#7 padding, and
// the key itself is encrypted with the vendor's RSA key (PKCS#1 v1.5).
// Both parts are standard base64.
type Encrypter struct {
	publicKey *rsa.PublicKey
}

func NewEncrypterFromFile(path string) (*Encrypter, error) {
	pemBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.ConfigError, "read public key")
	}

	return NewEncrypter(pemBytes)
}

func NewEncrypter(pemBytes []byte) (*Encrypter, error) {
	block, _ := pem.Decode(bytes.TrimSpace(pemBytes))
	if block == nil || block.Type != pemBlockType {
		return nil, domain.NewError(errcodes.ConfigError, "public key is not a PEM \"PUBLIC KEY\" block")
	}

	key, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.ConfigError, "parse public key")
	}

	rsaKey, ok := key.(*rsa.PublicKey)
	if !ok {
		return nil, domain.NewError(errcodes.ConfigError, fmt.Sprintf("public key is %T, not RSA", key))
	}

	return &Encrypter{publicKey: rsaKey}, nil
}

// Encrypt returns the base64 wrapped key and the base64 ciphertext.
func (e *Encrypter) Encrypt(payload []byte) (encKey, encContent string, err error) {
	contentKey, err := randomKey(contentKeyLen)
	if err != nil {
		return "", "", domain.WrapError(err, errcodes.EncryptionError, "generate content key")
	}

	wrappedKey, err := rsa.EncryptPKCS1v15(rand.Reader, e.publicKey, contentKey)
	if err != nil {
		return "", "", domain.WrapError(err, errcodes.EncryptionError, "rsa.EncryptPKCS1v15")
	}

	ciphertext, err := encryptECB(contentKey, payload)
	if err != nil {
		return "", "", domain.WrapError(err, errcodes.EncryptionError, "aes ecb encrypt")
	}

	return base64.StdEncoding.EncodeToString(wrappedKey), base64.StdEncoding.EncodeToString(ciphertext), nil
}

func randomKey(n int) ([]byte, error) {
	key := make([]byte, n)
	limit := big.NewInt(int64(len(alphanumeric)))

	for i := range key {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return nil, fmt.Errorf("rand.Int: %w", err)
		}

		key[i] = alphanumeric[idx.Int64()]
	}

	return key, nil
}

// encryptECB encrypts every block independently. The standard library has no
// ECB mode.
func encryptECB(key, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("aes.NewCipher: %w", err)
	}

	size := block.BlockSize()
	padded := pkcs7Pad(plaintext, size)
	ciphertext := make([]byte, len(padded))

	for offset := 0; offset < len(padded); offset += size {
		block.Encrypt(ciphertext[offset:offset+size], padded[offset:offset+size])
	}

	return ciphertext, nil
}

func pkcs7Pad(data []byte, size int) []byte {
	padding := size - len(data)%size

	return append(bytes.Clone(data), bytes.Repeat([]byte{byte(padding)}, padding)...)
}
