package idutil

import (
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
)

var (
	nodeOnce sync.Once
	node     *snowflake.Node
	nodeErr  error
)

func defaultNode() (*snowflake.Node, error) {
	nodeOnce.Do(func() {
		node, nodeErr = snowflake.NewNode(1)
	})

	return node, nodeErr
}

// NewSnowflakeID returns a time ordered id in its decimal string form.
func NewSnowflakeID() (string, error) {
	n, err := defaultNode()
	if err != nil {
		return "", err
	}

	return n.Generate().String(), nil
}

// TimeOf extracts the creation time of a snowflake id produced by
// NewSnowflakeID.
func TimeOf(id string) (time.Time, error) {
	sID, err := snowflake.ParseString(id)
	if err != nil {
		return time.Time{}, err
	}

	return time.UnixMilli(sID.Time()), nil
}

func NewUUID() string {
	return uuid.NewString()
}
