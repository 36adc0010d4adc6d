// Package uiutil holds presentation helpers shared by templates and handlers.
package uiutil

import (
	"strconv"

	"github.com/summitlog/summits-web/internal/domain/model"
)

type monthNames struct {
	// nominative is used with a month and year, genitive with a full date.
	nominative [12]string
	genitive   [12]string
}

var months = map[Locale]monthNames{
	LocaleRU: {
		nominative: [12]string{
			"Январь", "Февраль", "Март", "Апрель", "Май", "Июнь",
			"Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь",
		},
		genitive: [12]string{
			"Января", "Февраля", "Марта", "Апреля", "Мая", "Июня",
			"Июля", "Августа", "Сентября", "Октября", "Ноября", "Декабря",
		},
	},
	LocaleEN: {
		nominative: [12]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		genitive: [12]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
	},
}

// FormatDate renders an inexact climb date:
//
//	{0 0 0}       → ""
//	{2006 0 0}    → "2006"
//	{2006 1 0}    → "Январь 2006"
//	{2006 1 2}    → "2 Января 2006"
//
// Every other combination renders as "". Unknown locales use Russian.
func FormatDate(d model.InexactDate, loc Locale) string {
	names, ok := months[loc]
	if !ok {
		names = months[LocaleRU]
	}
	year := strconv.Itoa(d.Year)

	switch d.Precision() {
	case model.PrecisionYear:
		return year
	case model.PrecisionMonth:
		return names.nominative[d.Month-1] + " " + year
	case model.PrecisionDay:
		return strconv.Itoa(d.Day) + " " + names.genitive[d.Month-1] + " " + year
	default:
		return ""
	}
}
