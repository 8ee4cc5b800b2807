package codec

import "fmt"

// DiagKind 区分诊断信息的种类，这些情况都不会中断解析
type DiagKind int

const (
	DiagMalformedTag    DiagKind = iota // 值无法按声明的类型解析，槽位保留默认值
	DiagUnrecognizedTag                 // 该实体类型不认识的组码，值被丢弃
	DiagVersionMismatch                 // 标签超出声明版本的有效区间，仍照常处理
	DiagComment                         // 组码 999 注释，未设置回调时记录在此
	DiagEmptyList                       // 对空链表执行了批量释放
	DiagRejectedRecord                  // 记录未过硬性前置校验，整条被丢弃
	DiagUnknownEntity                   // 未注册的实体类型，整条记录被跳过
)

var diagNames = map[DiagKind]string{
	DiagMalformedTag:    "值格式错误",
	DiagUnrecognizedTag: "无法识别的组码",
	DiagVersionMismatch: "版本不匹配",
	DiagComment:         "注释",
	DiagEmptyList:       "空链表",
	DiagRejectedRecord:  "记录被丢弃",
	DiagUnknownEntity:   "未注册的实体类型",
}

// Diagnostic 记录一条非致命的解析/写出问题，
// 带实体类型、文件名与行号，渲染后可直接展示给用户。
type Diagnostic struct {
	Kind   DiagKind
	Entity string
	File   string
	Line   int
	Code   int
	Value  string
	Detail string
}

func (d Diagnostic) String() string {
	s := fmt.Sprintf("[%s]", diagNames[d.Kind])
	if d.File != "" {
		s += fmt.Sprintf(" %s 第 %d 行", d.File, d.Line)
	}
	if d.Entity != "" {
		s += " " + d.Entity
	}
	switch d.Kind {
	case DiagMalformedTag, DiagUnrecognizedTag, DiagVersionMismatch:
		s += fmt.Sprintf(" 组码 %d 值 %q", d.Code, d.Value)
	}
	if d.Detail != "" {
		s += ": " + d.Detail
	}
	return s
}
