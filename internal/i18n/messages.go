package i18n

var englishMessages = map[Key]string{
	KeyTitle:            "MindAnalyzer",
	KeySubtitle:         "AI-powered mental health text analysis",
	KeyTextLabel:        "Share your thoughts:",
	KeyTextPlaceholder:  "I've been feeling... ✍️",
	KeyLanguageLabel:    "Language:",
	KeyLanguageName:     "English",
	KeyUsernameLabel:    "Username",
	KeyEmailLabel:       "Email",
	KeyPasswordLabel:    "Password",
	KeySubmitButton:     "Analyze Text",
	KeySubmitBusy:       "Analyzing...",
	KeyLoginButton:      "Log in",
	KeyLoginBusy:        "Logging in...",
	KeyRegisterButton:   "Register",
	KeyRegisterBusy:     "Registering...",
	KeyLogoutButton:     "Log out",
	KeyLoading:          "Analysis in progress...",
	KeyDisclaimer:       "This tool does not replace professional help. If you are in crisis, contact local emergency services.",
	KeyGreeting:         "Welcome, %s",
	KeyGreetingAnon:     "You are logged in",
	KeyLoggedOut:        "You are not logged in",
	KeyTokenExpiresAt:   "Session token expires at %s",
	KeyLanguageSwitched: "Language: %s",
	KeyLoggedOutNotice:  "You have been logged out",

	KeySentiment:         "Sentiment:",
	KeyConfidence:        "Confidence:",
	KeyEmotions:          "Emotions:",
	KeySkills:            "Skills:",
	KeyPatterns:          "Cognitive Patterns:",
	KeyNone:              "None detected",
	KeyError:             "Error:",
	KeySentimentPositive: "positive",
	KeySentimentNegative: "negative",
	KeySentimentNeutral:  "neutral",
	KeySentimentMixed:    "mixed",

	KeyErrUsernameRequired:   "Please enter a username",
	KeyErrEmailRequired:      "Please enter an email",
	KeyErrEmailInvalid:       "Please enter a valid email address",
	KeyErrPasswordRequired:   "Please enter a password",
	KeyErrTextRequired:       "Please enter some text to analyze",
	KeyErrInvalid:            "Please check the form fields",
	KeyErrNotLoggedIn:        "Please log in to analyze text",
	KeyErrAlreadyLoggedIn:    "You are already logged in, log out first",
	KeyErrSessionExpired:     "Your session has expired. Please log in again",
	KeyErrNetwork:            "Network error: the server is unreachable",
	KeyErrBusy:               "A request is already in progress",
	KeyErrAnalysisFailed:     "Analysis failed",
	KeyErrLoginFailed:        "Login failed",
	KeyErrRegistrationFailed: "Registration failed",
	KeyErrUnknownLanguage:    "Unknown language %q, supported: en, ru",

	KeyHelpLoggedOut:  "Available commands: register, login, lang <en|ru>, status, exit",
	KeyHelpLoggedIn:   "Available commands: analyze, lang <en|ru>, status, logout, exit",
	KeyUnknownCommand: "Unknown command: %s",
	KeyBye:            "Bye!",
	KeyTextPrompt:     "(press Enter on an empty line to finish)",
}

var russianMessages = map[Key]string{
	KeyTitle:            "MindAnalyzer",
	KeySubtitle:         "Анализ психического здоровья с помощью ИИ",
	KeyTextLabel:        "Поделитесь мыслями:",
	KeyTextPlaceholder:  "Я чувствую... ✍️",
	KeyLanguageLabel:    "Язык:",
	KeyLanguageName:     "Русский",
	KeyUsernameLabel:    "Имя пользователя",
	KeyEmailLabel:       "Email",
	KeyPasswordLabel:    "Пароль",
	KeySubmitButton:     "Анализировать текст",
	KeySubmitBusy:       "Анализируем...",
	KeyLoginButton:      "Войти",
	KeyLoginBusy:        "Входим...",
	KeyRegisterButton:   "Зарегистрироваться",
	KeyRegisterBusy:     "Регистрируем...",
	KeyLogoutButton:     "Выйти",
	KeyLoading:          "Анализ выполняется...",
	KeyDisclaimer:       "Этот инструмент не заменяет помощь специалиста. В кризисной ситуации обратитесь в экстренные службы.",
	KeyGreeting:         "Добро пожаловать, %s",
	KeyGreetingAnon:     "Вы вошли в систему",
	KeyLoggedOut:        "Вы не вошли в систему",
	KeyTokenExpiresAt:   "Токен сессии действует до %s",
	KeyLanguageSwitched: "Язык: %s",
	KeyLoggedOutNotice:  "Вы вышли из системы",

	KeySentiment:         "Настроение:",
	KeyConfidence:        "Уверенность:",
	KeyEmotions:          "Эмоции:",
	KeySkills:            "Навыки:",
	KeyPatterns:          "Когнитивные искажения:",
	KeyNone:              "Не обнаружено",
	KeyError:             "Ошибка:",
	KeySentimentPositive: "позитивное",
	KeySentimentNegative: "негативное",
	KeySentimentNeutral:  "нейтральное",
	KeySentimentMixed:    "смешанное",

	KeyErrUsernameRequired:   "Введите имя пользователя",
	KeyErrEmailRequired:      "Введите email",
	KeyErrEmailInvalid:       "Введите корректный email",
	KeyErrPasswordRequired:   "Введите пароль",
	KeyErrTextRequired:       "Введите текст для анализа",
	KeyErrInvalid:            "Проверьте поля формы",
	KeyErrNotLoggedIn:        "Войдите, чтобы анализировать текст",
	KeyErrAlreadyLoggedIn:    "Вы уже вошли в систему, сначала выйдите",
	KeyErrSessionExpired:     "Сессия истекла. Пожалуйста, войдите снова",
	KeyErrNetwork:            "Ошибка сети: сервер недоступен",
	KeyErrBusy:               "Запрос уже выполняется",
	KeyErrAnalysisFailed:     "Ошибка анализа",
	KeyErrLoginFailed:        "Ошибка входа",
	KeyErrRegistrationFailed: "Ошибка регистрации",
	KeyErrUnknownLanguage:    "Неизвестный язык %q, доступны: en, ru",

	KeyHelpLoggedOut:  "Доступные команды: register, login, lang <en|ru>, status, exit",
	KeyHelpLoggedIn:   "Доступные команды: analyze, lang <en|ru>, status, logout, exit",
	KeyUnknownCommand: "Неизвестная команда: %s",
	KeyBye:            "До свидания!",
	KeyTextPrompt:     "(пустая строка завершает ввод)",
}
