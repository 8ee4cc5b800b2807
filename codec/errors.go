package codec

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/zooyer/dxfcodec/core"
)

// ErrDanglingSuccessor 表示试图释放仍链接着后继节点的实体，
// 先摘链或改用 FreeList。
var ErrDanglingSuccessor = errors.New("实体仍链接着后继节点")

// ValidationError 表示硬性前置条件未满足，整条记录被丢弃
type ValidationError struct {
	Type  string
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s 缺少必填字段 %s，整条记录被丢弃", e.Type, e.Field)
}

// VersionError 表示目标版本低于实体的最低可用版本，无法写出
type VersionError struct {
	Type   string
	Target core.Version
	Min    core.Version
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("%s 不支持目标版本 %s(最低 %s)", e.Type, e.Target, e.Min)
}
