package codec

import (
	"github.com/cockroachdb/errors"
)

// Append 把实体挂到链表尾部并返回新的尾节点。
// tail 为 nil 表示建链，entity 已经链着后继时拒绝。
func Append(tail, entity *Entity) (*Entity, error) {
	if entity == nil {
		return nil, errors.New("不能追加空实体")
	}
	if entity.next != nil {
		return nil, ErrDanglingSuccessor
	}
	if tail != nil {
		if tail.next != nil {
			return nil, errors.New("追加位置不是尾节点")
		}
		tail.next = entity
	}
	return entity, nil
}

// Last 从头节点走到尾节点，调用方只持有头时使用
func Last(head *Entity) *Entity {
	if head == nil {
		return nil
	}
	for head.next != nil {
		head = head.next
	}
	return head
}

// FreeOne 释放一个已摘链的实体，清空它独占的子链。
// 仍链接着后继的节点整体拒绝，不做部分释放。
func FreeOne(entity *Entity) error {
	if entity == nil {
		return errors.New("不能释放空实体")
	}
	if entity.next != nil {
		return ErrDanglingSuccessor
	}
	entity.Chunks = nil
	entity.ObjectIDs = nil
	entity.fields = nil
	return nil
}

// FreeList 迭代释放整条链，每个节点恰好访问一次。
// 文件里可能有上千个实体，必须迭代而不是递归。
// head 为 nil 按告警处理，不算错误。
func FreeList(head *Entity) (freed int, warn *Diagnostic) {
	if head == nil {
		return 0, &Diagnostic{Kind: DiagEmptyList, Detail: "对空链表执行批量释放"}
	}
	for head != nil {
		next := head.next
		head.next = nil
		_ = FreeOne(head)
		head = next
		freed++
	}
	return freed, nil
}

// List 是文档层面按实体类型维护的链表，
// 同时持有头尾指针，追加 O(1)。
type List struct {
	head *Entity
	tail *Entity
	size int
}

// Append 追加实体到链表尾部
func (l *List) Append(entity *Entity) error {
	tail, err := Append(l.tail, entity)
	if err != nil {
		return err
	}
	if l.head == nil {
		l.head = tail
	}
	l.tail = tail
	l.size++
	return nil
}

// Head 返回链表头
func (l *List) Head() *Entity {
	return l.head
}

// Len 返回链表长度
func (l *List) Len() int {
	return l.size
}

// All 按链表顺序收集所有实体
func (l *List) All() []*Entity {
	all := make([]*Entity, 0, l.size)
	for e := l.head; e != nil; e = e.next {
		all = append(all, e)
	}
	return all
}

// Free 释放整条链并重置链表
func (l *List) Free() (int, *Diagnostic) {
	freed, warn := FreeList(l.head)
	l.head, l.tail, l.size = nil, nil, 0
	return freed, warn
}
