package database

import (
	"context"
	"errors"
	"strings"
	"time"

	coreport "github.com/leoandrade/payment-api/internal/domain/port/core"
	"github.com/leoandrade/payment-api/internal/infrastructure/adapter/reqid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultSlowThreshold = 200 * time.Millisecond

// DatabaseLogger forwards gorm output to the core logger
type DatabaseLogger struct {
	coreLogger    coreport.Logger
	logLevel      logger.LogLevel
	slowThreshold time.Duration
	timeProvider  coreport.TimeProvider
}

// NewDatabaseLogger bridges gorm logging into the core logger.
// "debug" and "info" trace every statement, "warn" only slow ones and errors.
func NewDatabaseLogger(coreLogger coreport.Logger, timeProvider coreport.TimeProvider, level string) logger.Interface {
	return &DatabaseLogger{
		coreLogger:    coreLogger,
		logLevel:      gormLevel(level),
		slowThreshold: defaultSlowThreshold,
		timeProvider:  timeProvider,
	}
}

func gormLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info", "debug":
		return logger.Info
	default:
		return logger.Warn
	}
}

// LogMode returns a copy of the logger at the given level
func (l *DatabaseLogger) LogMode(level logger.LogLevel) logger.Interface {
	clone := *l
	clone.logLevel = level
	return &clone
}

// WithSlowThreshold returns a copy of the logger with another slow query threshold
func (l *DatabaseLogger) WithSlowThreshold(threshold time.Duration) logger.Interface {
	clone := *l
	clone.slowThreshold = threshold
	return &clone
}

func (l *DatabaseLogger) Info(ctx context.Context, msg string, _ ...interface{}) {
	if l.logLevel >= logger.Info {
		l.coreLogger.Info(msg, l.baseFields(ctx))
	}
}

func (l *DatabaseLogger) Warn(ctx context.Context, msg string, _ ...interface{}) {
	if l.logLevel >= logger.Warn {
		l.coreLogger.Warn(msg, l.baseFields(ctx))
	}
}

func (l *DatabaseLogger) Error(ctx context.Context, msg string, _ ...interface{}) {
	if l.logLevel >= logger.Error {
		l.coreLogger.Error(msg, l.baseFields(ctx))
	}
}

// ParamsFilter drops bound values from logged SQL so card data and password hashes never reach the logs
func (l *DatabaseLogger) ParamsFilter(ctx context.Context, sql string, params ...interface{}) (string, []interface{}) {
	return sql, nil
}

// Trace logs one executed statement
func (l *DatabaseLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.logLevel <= logger.Silent {
		return
	}

	elapsed := l.elapsed(begin)
	sql, rows := fc()

	fields := l.baseFields(ctx)
	fields["elapsed"] = elapsed.String()
	fields["rows"] = rows
	fields["sql"] = sql
	if verb, table := describeStatement(sql); verb != "" {
		fields["type"] = verb
		if table != "" {
			fields["table"] = table
		}
	}

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.logLevel >= logger.Error:
		fields["error"] = err.Error()
		l.coreLogger.Error("SQL Error", fields)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.logLevel >= logger.Warn:
		l.coreLogger.Warn("Slow SQL Query", fields)
	case l.logLevel >= logger.Info:
		l.coreLogger.Debug("SQL Query", fields)
	}
}

func (l *DatabaseLogger) elapsed(begin time.Time) time.Duration {
	if l.timeProvider != nil {
		return l.timeProvider.Since(begin)
	}
	return time.Since(begin)
}

func (l *DatabaseLogger) baseFields(ctx context.Context) map[string]any {
	fields := map[string]any{"source": "database"}
	if id := reqid.FromCtx(ctx); id != "" {
		fields["request_id"] = id
	}
	return fields
}

// describeStatement returns the SQL verb and the table it targets for
// SELECT, INSERT, UPDATE and DELETE statements. Other statements yield "".
func describeStatement(sql string) (verb, table string) {
	tokens := strings.Fields(sql)
	if len(tokens) == 0 {
		return "", ""
	}

	verb = strings.ToUpper(tokens[0])
	var marker string
	switch verb {
	case "SELECT", "DELETE":
		marker = "FROM"
	case "INSERT":
		marker = "INTO"
	case "UPDATE":
		return verb, tableName(tokens, 1)
	default:
		return "", ""
	}

	for i, tok := range tokens {
		if strings.EqualFold(tok, marker) {
			return verb, tableName(tokens, i+1)
		}
	}
	return verb, ""
}

func tableName(tokens []string, i int) string {
	if i >= len(tokens) {
		return ""
	}
	name := strings.Trim(tokens[i], "\"`();")
	if open := strings.IndexByte(name, '('); open >= 0 {
		name = name[:open]
	}
	return strings.ToLower(name)
}
