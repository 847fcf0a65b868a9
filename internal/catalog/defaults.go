package catalog

// DefaultDocument returns the built-in page content.
func DefaultDocument() Document {
	return Document{
		Company: CompanyInfo{
			Name:         "ИнгоСтрах",
			Slogan:       "Динамическое страхование для цифрового мира",
			FoundingYear: 2025,
		},
		Palette: ThemePalette{
			Primary:   "from-blue-600 to-red-500",
			Secondary: "from-gray-800/50 to-blue-900/50",
			Dark:      "from-gray-900 via-blue-900 to-gray-900",
			Light:     "from-gray-50 via-blue-50 to-gray-50",
		},
		Health: HealthMetricSet{
			ActivityScore: 87,
			SleepQuality:  92,
			HeartHealth:   78,
			StressLevel:   45,
		},
		Insurance: InsuranceSummary{
			CurrentPremium:     12500,
			PotentialSavings:   3750,
			CoverageLevel:      95,
			NextAdjustmentDate: "2025-12-01",
		},
		Services: []ServiceOffering{
			{Name: "ИнгоЛаб", Icon: "heart", Color: "from-red-500 to-pink-500", Description: "Лабораторные исследования и диагностика"},
			{Name: "Телемедицина", Icon: "smartphone", Color: "from-blue-500 to-cyan-500", Description: "Консультации врачей онлайн"},
			{Name: "ДМС", Icon: "users", Color: "from-green-500 to-emerald-500", Description: "Добровольное медицинское страхование"},
			{Name: "Онкострахование", Icon: "shield", Color: "from-purple-500 to-violet-500", Description: "Специализированная онкологическая защита"},
			{Name: "Ментальное здоровье", Icon: "activity", Color: "from-orange-500 to-red-500", Description: "Психологическая поддержка и терапия"},
			{Name: "Международные", Icon: "trending-up", Color: "from-indigo-500 to-purple-500", Description: "Страхование для путешественников"},
		},
		Metrics: []MetricTile{
			{Icon: "smartphone", Label: "Носимые устройства", Value: "12,500+", Description: "Подключенные устройства"},
			{Icon: "heart", Label: "Медицинские данные", Value: "24/7", Description: "Мониторинг в реальном времени"},
			{Icon: "activity", Label: "Поведенческий анализ", Value: "AI-powered", Description: "Искусственный интеллект"},
			{Icon: "shield", Label: "Динамические премии", Value: "-30%", Description: "Максимальная экономия"},
		},
		Recommendations: []string{
			"Увеличьте физическую активность на 15% для дополнительной скидки",
			"Пройдите профилактический осмотр для расширения покрытия",
			"Подключите носимое устройство для более точной тарификации",
		},
		Technologies: []TechnologyItem{
			{Title: "AI-тарификация", Description: "Персонализированные премии", Icon: "bar-chart-3"},
			{Title: "Real-time данные", Description: "Анализ в режиме реального времени", Icon: "clock"},
			{Title: "Превентивная аналитика", Description: "Прогнозирование рисков", Icon: "target"},
			{Title: "Безопасность данных", Description: "Защита вашей информации", Icon: "shield-check"},
		},
		NavLinks: []NavLink{
			{Label: "Главная", Href: "#"},
			{Label: "Продукты", Href: "#"},
			{Label: "Кабинет", Href: "#"},
			{Label: "Поддержка", Href: "#"},
		},
		QuickActions: []QuickAction{
			{Label: "Открыть страховой случай", Color: "from-blue-600 to-blue-700"},
			{Label: "Загрузить документы", Color: "from-green-600 to-green-700"},
			{Label: "AI-ассистент", Color: "from-purple-600 to-purple-700"},
		},
		Footer: []FooterSection{
			{Title: "Продукты", Items: []string{"ДМС", "Онко", "Ментальное здоровье", "Международные"}},
			{Title: "Поддержка", Items: []string{"Помощь", "Контакты", "Документы", "FAQ"}},
			{Title: "Компания", Items: []string{"О нас", "Карьера", "Новости", "Партнеры"}},
		},
	}
}
