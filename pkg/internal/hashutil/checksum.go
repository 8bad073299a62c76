// Package hashutil computes the content digests used to decide whether a
// live file and its storage copy have diverged.
package hashutil

import (
	"crypto/sha256"
	"encoding/hex"
	"io"

	"github.com/arthur-debert/dotr/pkg/errors"
	"github.com/arthur-debert/dotr/pkg/types"
)

// Sum returns the lowercase hex SHA-256 digest of data.
func Sum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// CalculateFileChecksum calculates the SHA256 checksum of a file
func CalculateFileChecksum(fsys types.FS, path string) (string, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileRead, "cannot open %s for hashing", path)
	}
	defer func() {
		_ = file.Close()
	}()

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileRead, "cannot read %s for hashing", path)
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}
