package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sandeepkv93/agenda/internal/model"
)

type Type string

const (
	TypeGoto   Type = "goto"
	TypeToday  Type = "today"
	TypeAdd    Type = "add"
	TypeDelete Type = "delete"
	TypeList   Type = "list"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type GotoArgs struct {
	Date model.DateKey
}

type AddArgs struct {
	Text string
}

type DeleteArgs struct {
	Index int
}

type Command struct {
	Type   Type
	Raw    string
	Goto   *GotoArgs
	Add    *AddArgs
	Delete *DeleteArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if strings.HasPrefix(raw, ":") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, ":"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeGoto, "g":
		return parseGoto(input, args)
	case TypeToday:
		return Command{Type: TypeToday, Raw: input}, nil
	case TypeAdd, "a":
		return parseAdd(input, raw, parts[0])
	case TypeDelete, "d", "del":
		return parseDelete(input, args)
	case TypeList, "ls":
		return Command{Type: TypeList, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseGoto(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "goto requires a YYYY-MM-DD date"}
	}
	date, err := model.ParseDateKey(args[0])
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: err.Error()}
	}
	return Command{Type: TypeGoto, Raw: raw, Goto: &GotoArgs{Date: date}}, nil
}

// parseAdd keeps the text after the verb verbatim apart from outer whitespace.
func parseAdd(raw, trimmed, verb string) (Command, error) {
	text := strings.TrimSpace(strings.TrimPrefix(trimmed, verb))
	if text == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires task text"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Text: text}}, nil
}

func parseDelete(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "delete requires a task number"}
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("not a task number: %s", args[0])}
	}
	return Command{Type: TypeDelete, Raw: raw, Delete: &DeleteArgs{Index: n}}, nil
}
