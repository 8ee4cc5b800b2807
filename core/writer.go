package core

import (
	"bufio"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
)

// Writer 将标签序列按"组码行+值行"的格式写回字符流，
// 组码按 DXF 惯例右对齐到三列。
type Writer struct {
	writer *bufio.Writer
	line   int
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{
		writer: bufio.NewWriter(w),
	}
}

// Write 写出一组标签，值行超过长度上限时截断，
// 二进制块行（组码 310~319）的上限是 MaxChunkLength
func (w *Writer) Write(tag Tag) error {
	limit := MaxLineLength
	if BinaryChunkCode(tag.Code) {
		limit = MaxChunkLength
	}

	value := tag.Value
	if len(value) > limit {
		value = value[:limit]
	}

	if _, err := fmt.Fprintf(w.writer, "%3d\r\n%s\r\n", tag.Code, value); err != nil {
		return errors.Wrapf(err, "写出组码 %d 失败(第 %d 行)", tag.Code, w.line+1)
	}
	w.line += 2

	return nil
}

// WriteAll 依次写出一批标签
func (w *Writer) WriteAll(tags []Tag) error {
	for _, tag := range tags {
		if err := w.Write(tag); err != nil {
			return err
		}
	}
	return nil
}

// Flush 将缓冲内容刷入底层流
func (w *Writer) Flush() error {
	return errors.Wrap(w.writer.Flush(), "刷新输出流失败")
}

// Line 返回已写出的行数
func (w *Writer) Line() int {
	return w.line
}
