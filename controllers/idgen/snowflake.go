package idgen

import (
	"log"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node     *snowflake.Node
	nodeOnce sync.Once
)

// Init binds the generator to a node number; called once from main with SNOWFLAKE_NODE.
func Init(nodeID int64) {
	nodeOnce.Do(func() {
		var err error
		node, err = snowflake.NewNode(nodeID)
		if err != nil {
			log.Fatalf("Failed to init Snowflake: %v", err)
		}
	})
}

func GenerateID() int64 {
	Init(1)
	return node.Generate().Int64()
}

// GenerateString is the base36 form used in object keys.
func GenerateString() string {
	Init(1)
	return node.Generate().Base36()
}
