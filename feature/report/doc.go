// Package report turns check results into leveled lines and exports them.
//
// Every check is rendered as a Section framed by "== start ==" and "== end =="
// banners and closed with an [OK], [NG] or [ERROR] summary line. Emit hands
// sections to a zap logger. Write and WriteFile export any result as JSON or YAML.
//
// The day query lists, for each target date, the active sites working that day
// with the position of the date among their work days:
//
//	2024/05/03(金)
//	0001-234 (1/2)
package report
