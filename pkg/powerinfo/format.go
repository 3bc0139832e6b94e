package powerinfo

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

const (
	unlimitedLabel = "Бесконечное время (подключено к сети)"
	unknownLabel   = "Время работы неизвестно"

	pluggedInLabel   = "Подключено к сети"
	onBatteryLabel   = "Работает от батареи"
	basicInfoTitle   = "--- БАЗОВАЯ ИНФОРМАЦИЯ О БАТАРЕЕ ---"
	noBatteryMessage = "Информация о батарее недоступна. Возможно, вы используете настольный компьютер."
)

// FormatRemaining renders t for humans, e.g. "1 ч 30 мин".
func FormatRemaining(t TimeRemaining) string {
	switch {
	case t.IsUnlimited():
		return unlimitedLabel
	case t.IsUnknown():
		return unknownLabel
	}

	hours := int64(t) / 3600
	minutes := (int64(t) % 3600) / 60
	return fmt.Sprintf("%d ч %d мин", hours, minutes)
}

// FormatPercent renders a charge level, dropping the fraction when it is zero.
func FormatPercent(p float64) string {
	p = math.Round(p*10) / 10
	if p == math.Trunc(p) {
		return fmt.Sprintf("%d%%", int(p))
	}
	return fmt.Sprintf("%.1f%%", p)
}

// Format renders the basic battery section of the report.
func (r *Reading) Format() string {
	status := onBatteryLabel
	if r.PluggedIn {
		status = pluggedInLabel
	}

	var sb strings.Builder
	sb.WriteString(basicInfoTitle + "\n")
	sb.WriteString("Уровень заряда батареи: " + FormatPercent(r.Percent) + "\n")
	sb.WriteString("Статус питания: " + status + "\n")
	sb.WriteString("Оставшееся время работы: " + FormatRemaining(r.Remaining) + "\n")
	return sb.String()
}

// FormatUnavailable renders the basic section for a failed sensor read.
func FormatUnavailable(err error) string {
	if err == nil || errors.Is(err, ErrNoBattery) {
		return noBatteryMessage + "\n"
	}
	return basicInfoTitle + "\n" + fmt.Sprintf("Не удалось получить информацию о батарее: %v\n", err)
}
