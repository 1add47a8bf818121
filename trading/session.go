package trading

import (
	"time"
	_ "time/tzdata"

	"stockquote/market"
)

// TimeRange 时间范围（当地时间）
type TimeRange struct {
	StartHour   int
	StartMinute int
	EndHour     int
	EndMinute   int
}

// Session 某个市场的交易时段
type Session struct {
	Location *time.Location
	Hours    []TimeRange
}

var sessions = map[market.Kind]Session{
	market.CNA: {
		Location: mustLoad("Asia/Shanghai"),
		Hours:    []TimeRange{{9, 30, 11, 30}, {13, 0, 15, 0}},
	},
	market.HK: {
		Location: mustLoad("Asia/Hong_Kong"),
		Hours:    []TimeRange{{9, 30, 12, 0}, {13, 0, 16, 0}},
	},
	// 夏令时由时区数据处理
	market.US: {
		Location: mustLoad("America/New_York"),
		Hours:    []TimeRange{{9, 30, 16, 0}},
	},
}

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// IsTradingTimeAt 判断指定时间该市场是否在交易时段内
//
// 基金只有收盘后的净值，没有盘中交易，始终返回 false。节假日不计。
func IsTradingTimeAt(kind market.Kind, t time.Time) bool {
	s, ok := sessions[kind]
	if !ok {
		return false
	}
	t = t.In(s.Location)

	weekday := t.Weekday()
	if weekday == time.Saturday || weekday == time.Sunday {
		return false
	}
	return isInTimeRanges(t, s.Hours)
}

// IsTradingTime 判断当前该市场是否在交易时段内
func IsTradingTime(kind market.Kind) bool {
	return IsTradingTimeAt(kind, time.Now())
}

// isInTimeRanges 检查时间是否在指定的时间范围内
func isInTimeRanges(t time.Time, ranges []TimeRange) bool {
	currentMinutes := t.Hour()*60 + t.Minute()
	for _, r := range ranges {
		startMinutes := r.StartHour*60 + r.StartMinute
		endMinutes := r.EndHour*60 + r.EndMinute
		if currentMinutes >= startMinutes && currentMinutes <= endMinutes {
			return true
		}
	}
	return false
}
