package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

const offsetTokenPrefix = "offset"

// EncodeOffsetToken creates an opaque token pointing at the entry with the
// given offset of a pair's trade history.
func EncodeOffsetToken(pairCode string, offset int) string {
	tokenStr := strings.Join([]string{offsetTokenPrefix, pairCode, strconv.Itoa(offset)}, "|")
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeOffsetToken parses a token created by EncodeOffsetToken. The token
// must have been issued for pairCode.
func DecodeOffsetToken(token string, pairCode string) (int, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return 0, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}

	parts := strings.Split(string(decodedBytes), "|")
	if len(parts) != 3 || parts[0] != offsetTokenPrefix {
		return 0, fmt.Errorf("invalid pagination token format (split)")
	}
	if parts[1] != pairCode {
		return 0, fmt.Errorf("pagination token was issued for %s, not %s", parts[1], pairCode)
	}

	offset, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0, fmt.Errorf("invalid pagination token format (offset parse): %w", err)
	}
	if offset < 0 {
		return 0, fmt.Errorf("invalid pagination token format (negative offset)")
	}
	return offset, nil
}
