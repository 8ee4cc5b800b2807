package core

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Scanner 从字符流中按"组码行+值行"的节奏读取标签，
// 并维护行号，供诊断信息定位出错位置。
type Scanner struct {
	reader  *bufio.Reader
	LastTag Tag
	line    int
	err     error
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		reader: bufio.NewReader(r),
	}
}

// Next 读取下一组标签，读到流结尾或出错时返回 false。
// 组码 0 也会正常返回，是否终止由调用方判断。
func (s *Scanner) Next() bool {
	if s.err != nil {
		return false
	}

	// 1. 读取 Code 行，空行可能连片出现，用循环跳过
	var (
		codeStr string
		atEOF   bool
	)
	for codeStr == "" {
		codeLine, err := s.reader.ReadString('\n')
		if err == io.EOF && strings.TrimSpace(codeLine) == "" {
			// 正常结束
			return false
		}
		if err != nil && err != io.EOF {
			s.err = errors.Wrapf(err, "读取组码行失败(第 %d 行)", s.line+1)
			return false
		}
		s.line++
		atEOF = err == io.EOF
		codeStr = strings.TrimSpace(codeLine)
	}

	code, err := strconv.Atoi(codeStr)
	if err != nil {
		s.err = errors.Wrapf(err, "组码不是整数(第 %d 行): %q", s.line, codeStr)
		return false
	}

	// 2. 读取 Value 行
	if atEOF {
		// Value 行如果 EOF 也是不完整的
		s.err = errors.Wrapf(io.ErrUnexpectedEOF, "组码 %d 缺少值行(第 %d 行)", code, s.line)
		return false
	}
	valueLine, err := s.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		s.err = errors.Wrapf(err, "读取值行失败(第 %d 行)", s.line+1)
		return false
	}
	if valueLine == "" && err == io.EOF {
		s.err = errors.Wrapf(io.ErrUnexpectedEOF, "组码 %d 缺少值行(第 %d 行)", code, s.line)
		return false
	}
	s.line++

	// 去掉行尾的换行符，但保留 Value 开头的空格（DXF 规范要求）。
	// 二进制块行的上限是 MaxChunkLength，由解码端截断并记诊断，这里原样放行
	value := strings.TrimRight(valueLine, "\r\n")
	if len(value) > MaxLineLength && !BinaryChunkCode(code) {
		value = value[:MaxLineLength]
	}

	s.LastTag = Tag{Code: code, Value: value}
	return true
}

// Line 返回已消费的行数，标签正常情况下每组占两行
func (s *Scanner) Line() int {
	return s.line
}

func (s *Scanner) Err() error {
	return s.err
}
