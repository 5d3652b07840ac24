// Command hash-admin-key generates an operator key and its argon2id hash.
// The hash goes into ADMIN_KEY_HASH; the plaintext key goes to the operator.
package main

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/welcomeboard/welcomeboard/internal/auth"
)

type output struct {
	Key  string `json:"key"`
	Hash string `json:"hash"`
}

func main() {
	var (
		key    = flag.String("key", "", "Operator key to hash; generated when empty")
		format = flag.String("format", "plain", "Output format: plain or json")
	)
	flag.Parse()

	plaintext := *key
	if plaintext == "" {
		generated, err := generateKey()
		if err != nil {
			fmt.Fprintln(os.Stderr, "generate key:", err)
			os.Exit(1)
		}
		plaintext = generated
	}

	hash, err := auth.HashKey(plaintext)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hash key:", err)
		os.Exit(1)
	}

	out := output{Key: plaintext, Hash: hash}

	switch strings.ToLower(*format) {
	case "plain":
		fmt.Println("key: ", out.Key)
		fmt.Println("hash:", out.Hash)
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(out)
	default:
		fmt.Fprintln(os.Stderr, "invalid format; use plain or json")
		os.Exit(1)
	}
}

func generateKey() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return "wb_" + base64.RawURLEncoding.EncodeToString(buf), nil
}
