package report

import (
	"go.uber.org/zap"
)

// Level is the severity of a report line.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// MarshalText renders the level by name in exported reports.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Line is a single leveled report line.
type Line struct {
	Level Level  `json:"level" yaml:"level"`
	Text  string `json:"text" yaml:"text"`
}

// Section is the output of one check, framed by start and end banners.
type Section struct {
	Title  string `json:"title" yaml:"title"`
	Passed bool   `json:"passed" yaml:"passed"`
	Lines  []Line `json:"lines" yaml:"lines"`
}

func (s *Section) add(level Level, text string) {
	s.Lines = append(s.Lines, Line{Level: level, Text: text})
}

func (s *Section) debug(text string) { s.add(LevelDebug, text) }
func (s *Section) info(text string) { s.add(LevelInfo, text) }
func (s *Section) warn(text string) { s.add(LevelWarn, text) }
func (s *Section) fail(text string) { s.add(LevelError, text) }

// Emit writes sections to logger, one log entry per line.
func Emit(logger *zap.Logger, sections ...Section) {
	for _, s := range sections {
		logger.Info("== start " + s.Title + " ==")
		for _, line := range s.Lines {
			emitLine(logger, line)
		}
		logger.Info("== end " + s.Title + " ==")
	}
}

// EmitLines writes unframed lines to logger.
func EmitLines(logger *zap.Logger, lines ...Line) {
	for _, line := range lines {
		emitLine(logger, line)
	}
}

func emitLine(logger *zap.Logger, line Line) {
	switch line.Level {
	case LevelDebug:
		logger.Debug(line.Text)
	case LevelWarn:
		logger.Warn(line.Text)
	case LevelError:
		logger.Error(line.Text)
	default:
		logger.Info(line.Text)
	}
}
