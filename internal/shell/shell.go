// Package shell 提供以行為單位的指令介面：讀取一行、拆成參數、交給對應的 HandlerFunc，
// 並把結果寫到輸出。
package shell

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"
)

// ErrUsage 由 handler 回傳，表示參數不符；Shell 會印出該指令的用法
var ErrUsage = errors.New("usage error")

// ErrLineTooLong 表示輸入行超過 MaxLineSize，該行會被略過
var ErrLineTooLong = errors.New("line too long")

// DefaultMaxLineSize 為單行指令的預設上限（bytes）
const DefaultMaxLineSize = 1 << 20

// HandlerFunc 處理一個指令
type HandlerFunc func(c *Context) error

// Logger 為 Shell 所需的日誌介面
type Logger interface {
	Debugf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Warnf(string, ...interface{})  {}

// Command 描述一個已註冊的指令
type Command struct {
	Name    string
	Usage   string
	Summary string
	handler HandlerFunc
}

// Context 為單次指令呼叫的參數與輸出
type Context struct {
	args []string
	raw  string
	out  io.Writer
}

func (c *Context) Args() []string { return c.args }

func (c *Context) NArg() int { return len(c.args) }

// Arg 回傳第 i 個參數，超出範圍回傳空字串
func (c *Context) Arg(i int) string {
	if i < 0 || i >= len(c.args) {
		return ""
	}
	return c.args[i]
}

// Rest 回傳跳過前 n 個參數後的原始文字，保留其中的空白
func (c *Context) Rest(n int) string {
	s := c.raw
	for i := 0; i < n; i++ {
		s = strings.TrimLeftFunc(s, unicode.IsSpace)
		j := strings.IndexFunc(s, unicode.IsSpace)
		if j < 0 {
			return ""
		}
		s = s[j:]
	}
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}

// JSON 將 v 以單行 JSON 寫出
func (c *Context) JSON(v any) error {
	return json.NewEncoder(c.out).Encode(v)
}

// Writer 回傳輸出目的地
func (c *Context) Writer() io.Writer { return c.out }

type Shell struct {
	in       io.Reader
	out      io.Writer
	commands map[string]*Command
	Prompt   string
	Logger   Logger
	// MaxLineSize 為單行上限；超過的行印出錯誤後略過，不中斷迴圈
	MaxLineSize int
}

func New(in io.Reader, out io.Writer) *Shell {
	return &Shell{
		in:          in,
		out:         out,
		commands:    make(map[string]*Command),
		Logger:      nopLogger{},
		MaxLineSize: DefaultMaxLineSize,
	}
}

// Handle 註冊指令；重複名稱會覆蓋先前的註冊
func (s *Shell) Handle(name, usage, summary string, h HandlerFunc) {
	s.commands[name] = &Command{Name: name, Usage: usage, Summary: summary, handler: h}
}

// Commands 依名稱排序回傳所有已註冊指令
func (s *Shell) Commands() []Command {
	out := make([]Command, 0, len(s.commands))
	for _, c := range s.commands {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Exec 執行一行指令；回傳 true 表示應結束迴圈
func (s *Shell) Exec(line string) (bool, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false, nil
	}

	name := parts[0]
	switch name {
	case "quit", "exit":
		return true, nil
	case "help":
		return false, s.printHelp()
	}

	cmd, ok := s.commands[name]
	if !ok {
		s.Logger.Debugf("unknown command %q", name)
		_, err := fmt.Fprintf(s.out, "Unknown command: %s (type 'help')\n", name)
		return false, err
	}

	raw := strings.TrimLeftFunc(line, unicode.IsSpace)[len(name):]
	c := &Context{args: parts[1:], raw: raw, out: s.out}
	if err := cmd.handler(c); err != nil {
		if errors.Is(err, ErrUsage) {
			_, werr := fmt.Fprintf(s.out, "Usage: %s %s\n", cmd.Name, cmd.Usage)
			return false, werr
		}
		s.Logger.Warnf("command %s failed: %v", name, err)
		_, werr := fmt.Fprintf(s.out, "Error: %v\n", err)
		return false, werr
	}
	return false, nil
}

// Run 逐行讀取並執行指令，直到 quit/exit 或輸入結束
func (s *Shell) Run() error {
	r := bufio.NewReader(s.in)
	for {
		if s.Prompt != "" {
			if _, err := io.WriteString(s.out, s.Prompt); err != nil {
				return err
			}
		}
		line, err := readLine(r, s.MaxLineSize)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if errors.Is(err, ErrLineTooLong) {
			s.Logger.Warnf("input line exceeds %d bytes, skipped", s.MaxLineSize)
			if _, werr := fmt.Fprintf(s.out, "Error: %v (limit %d bytes)\n", err, s.MaxLineSize); werr != nil {
				return werr
			}
			continue
		}
		if err != nil {
			return err
		}
		quit, err := s.Exec(line)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// readLine 讀取一整行（去除行尾 \n 或 \r\n）。超過 max 的行會被讀完並丟棄，
// 回傳 ErrLineTooLong，讓呼叫端可以繼續讀下一行。
func readLine(r *bufio.Reader, max int) (string, error) {
	var buf []byte
	read, tooLong := false, false
	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			// 最後一行沒有換行且已讀到部分內容
			if errors.Is(err, io.EOF) && read {
				break
			}
			return "", err
		}
		read = true
		if !tooLong {
			if max > 0 && len(buf)+len(chunk) > max {
				tooLong, buf = true, nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			break
		}
	}
	if tooLong {
		return "", ErrLineTooLong
	}
	return string(buf), nil
}

func (s *Shell) printHelp() error {
	var b strings.Builder
	b.WriteString("Commands:\n")
	for _, c := range s.Commands() {
		fmt.Fprintf(&b, "  %-40s %s\n", strings.TrimSpace(c.Name+" "+c.Usage), c.Summary)
	}
	fmt.Fprintf(&b, "  %-40s %s\n", "help", "Show this help")
	fmt.Fprintf(&b, "  %-40s %s\n", "quit", "Exit")
	_, err := io.WriteString(s.out, b.String())
	return err
}
