package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// EncodeSeqToken creates an opaque cursor from a row's creation time and insertion sequence.
func EncodeSeqToken(createdAt time.Time, seq int64) string {
	tokenStr := fmt.Sprintf("%s|%d", createdAt.UTC().Format(timeFormat), seq)
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeSeqToken parses a cursor produced by EncodeSeqToken.
func DecodeSeqToken(token string) (time.Time, int64, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 {
		return time.Time{}, 0, fmt.Errorf("invalid pagination token format (split)")
	}

	createdAt, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}
	seq, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid pagination token format (seq parse): %w", err)
	}
	return createdAt, seq, nil
}
