package user

import (
	domcommon "userapi/internal/domain/common"
)

// IsConnectionError reports whether no database connection could be leased.
func IsConnectionError(err error) bool {
	return domcommon.IsConnection(err)
}

// IsQueryError reports whether the insert itself failed.
func IsQueryError(err error) bool {
	return domcommon.IsQuery(err)
}
