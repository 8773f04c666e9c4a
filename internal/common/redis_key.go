package common

import "fmt"

func RedisKeyLedger(key string) string {
	return fmt.Sprintf("ledger:%s", key)
}
