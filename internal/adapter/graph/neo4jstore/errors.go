package neo4jstore

import (
	"errors"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// IsAuthError reports whether err was caused by the server rejecting the
// configured credentials. Such errors are not worth retrying.
func IsAuthError(err error) bool {
	var neoErr *neo4j.Neo4jError
	return errors.As(err, &neoErr) && strings.HasPrefix(neoErr.Code, "Neo.ClientError.Security.")
}
