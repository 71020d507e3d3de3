// ABOUTME: User-facing reply texts and formatters, in the product's Russian.
// ABOUTME: Every failure message includes a short corrective usage example.
package bot

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hydrocal/hydrocal/internal/models"
	"github.com/hydrocal/hydrocal/internal/tracker"
)

const welcomeText = `Привет! Я бот для отслеживания воды, калорий и активности.

Доступные команды:
/set_profile - Настроить профиль
/log_water <мл> - Записать выпитую воду
/log_food <название> - Записать прием пищи
/log_workout <тип> <минуты> - Записать тренировку
/check_progress - Проверить прогресс
/help - Показать справку`

const helpText = `Я помогаю следить за водным балансом, калориями и активностью.

Как пользоваться:
1. Настройте профиль командой /set_profile
2. Записывайте выпитую воду командой /log_water <мл>
3. Записывайте приемы пищи командой /log_food <название>
4. Записывайте тренировки командой /log_workout <тип> <минуты>
5. Проверяйте прогресс командой /check_progress`

const (
	msgNotOnboarded = "Сначала настройте профиль с помощью команды /set_profile"
	msgUnknown      = "Я понимаю только команды. Отправьте /help для списка команд."

	msgWaterUsage   = "Укажите количество воды в мл. Пример: /log_water 250"
	msgWaterInvalid = "Пожалуйста, введите корректное положительное число. Пример: /log_water 250"

	msgWorkoutUsage           = "Укажите тип тренировки и время. Пример: /log_workout бег 30"
	msgWorkoutInvalidDuration = "Пожалуйста, введите корректное положительное число для времени. Пример: /log_workout бег 30"

	msgAskFoodName       = "Что вы съели?"
	msgFoodWeightInvalid = "Пожалуйста, введите корректное положительное число для веса:"
)

func formatProfileConfigured(rec *models.Record) string {
	return fmt.Sprintf(
		"Профиль успешно настроен!\n\n"+
			"Ваша цель по воде: %d мл\n"+
			"Ваша цель по калориям: %d ккал\n\n"+
			"Теперь вы можете начать отслеживание!",
		rec.WaterGoalML, rec.CalorieGoalKcal)
}

func formatWater(e tracker.WaterEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Записано: %d мл воды\n", e.AmountML)
	fmt.Fprintf(&b, "Всего выпито: %d мл из %d мл\n", e.TotalML, e.GoalML)
	if e.RemainingML > 0 {
		fmt.Fprintf(&b, "Осталось выпить: %d мл", e.RemainingML)
	} else {
		b.WriteString("Вы выполнили норму воды на сегодня!")
	}
	return b.String()
}

func formatFood(e tracker.FoodEntry) string {
	return fmt.Sprintf("Записано: %s - %s ккал (%s г)",
		e.Name, fmtNum(e.Kcal), fmtNum(e.WeightG))
}

func formatWorkout(e tracker.WorkoutEntry) string {
	s := fmt.Sprintf("%s %d минут - %d ккал", capitalize(e.Kind), e.Minutes, e.BurnedKcal)
	if e.WaterNeedML > 0 {
		s += fmt.Sprintf("\nРекомендуется выпить дополнительно: %d мл воды", e.WaterNeedML)
	}
	return s
}

func formatProgress(p models.Progress) string {
	var b strings.Builder
	b.WriteString("Прогресс:\n\n")

	b.WriteString("Вода:\n")
	fmt.Fprintf(&b, "- Выпито: %d мл из %d мл\n", p.WaterML, p.WaterGoalML)
	if p.WaterRemainingML > 0 {
		fmt.Fprintf(&b, "- Осталось: %d мл\n", p.WaterRemainingML)
	} else {
		b.WriteString("- Норма выполнена!\n")
	}

	b.WriteString("\nКалории:\n")
	fmt.Fprintf(&b, "- Потреблено: %s ккал\n", fmtNum(p.FoodKcal))
	fmt.Fprintf(&b, "- Сожжено: %d ккал\n", p.BurnedKcal)
	fmt.Fprintf(&b, "- Баланс: %s ккал из %d ккал\n", fmtNum(p.CalorieBalanceKcal), p.CalorieGoalKcal)
	if p.CaloriesRemainingKcal > 0 {
		fmt.Fprintf(&b, "- Осталось: %s ккал", fmtNum(p.CaloriesRemainingKcal))
	} else {
		b.WriteString("- Норма выполнена!")
	}
	return b.String()
}

// fmtNum renders a float rounded to one decimal without trailing
// zeros: 133.5 -> "133.5", 260.0 -> "260". The rounding also hides
// binary artifacts from summing one-decimal calorie values.
func fmtNum(f float64) string {
	return strconv.FormatFloat(math.Round(f*10)/10, 'f', -1, 64)
}

func capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
