package notifier

import (
	"fmt"
	"html"
	"strings"
	"time"
)

// FormatReport wraps a research report for Telegram's HTML parse mode.
func FormatReport(symbol, doc string, at time.Time) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📊 <b>个股研报</b> | %s | %s\n\n", html.EscapeString(symbol), at.Format("2006-01-02")))
	b.WriteString(html.EscapeString(doc))
	return b.String()
}

// FormatFailure reports a symbol whose report could not be built.
func FormatFailure(symbol string, err error) string {
	return fmt.Sprintf("❌ %s 研报生成失败: %s", html.EscapeString(symbol), html.EscapeString(err.Error()))
}

// FormatWatchList lists the symbols covered by the scheduled push.
func FormatWatchList(symbols []string) string {
	var b strings.Builder
	b.WriteString("👀 <b>关注列表</b>\n\n")
	if len(symbols) == 0 {
		b.WriteString("(空)\n")
	}
	for _, s := range symbols {
		b.WriteString(fmt.Sprintf("• %s\n", html.EscapeString(s)))
	}
	return b.String()
}

// FormatHelp lists the available commands.
func FormatHelp() string {
	return "可用命令:\n• /report 股票代码\n• /watch"
}
