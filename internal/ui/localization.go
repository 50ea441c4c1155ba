package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle            = "app_title"
	KeyBrand               = "brand"
	KeyModel               = "model"
	KeyPrice               = "price"
	KeyOS                  = "os"
	KeyRAM                 = "ram"
	KeyID                  = "id"
	KeyAddPhone            = "add_phone"
	KeyUpdatePhone         = "update_phone"
	KeyDeletePhone         = "delete_phone"
	KeyClearFields         = "clear_fields"
	KeyModeCreate          = "mode_create"
	KeyModeEdit            = "mode_edit"
	KeySuccess             = "success"
	KeyError               = "error"
	KeyAllFieldsRequired   = "all_fields_required"
	KeyInvalidPrice        = "invalid_price"
	KeyNoPhoneSelected     = "no_phone_selected"
	KeyPhoneAdded          = "phone_added"
	KeyPhoneUpdated        = "phone_updated"
	KeyPhoneDeleted        = "phone_deleted"
	KeyDatabaseError       = "database_error"
	KeyFile                = "file"
	KeySettings            = "settings"
	KeyLanguage            = "language"
	KeyShowDatabase        = "show_database"
	KeyDatabasePath        = "database_path"
	KeyStorageBackend      = "storage_backend"
	KeyShowSuccessMessages = "show_success_messages"
	KeyLogLevel            = "log_level"
	KeySave                = "save"
	KeyCancel              = "cancel"
	KeyBrowse              = "browse"
	KeySettingsSaved       = "settings_saved"
	KeyRestartRequired     = "restart_required"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:            "Phone Specifications CRUD",
		KeyBrand:               "Brand",
		KeyModel:               "Model",
		KeyPrice:               "Price",
		KeyOS:                  "OS",
		KeyRAM:                 "RAM",
		KeyID:                  "ID",
		KeyAddPhone:            "Add Phone",
		KeyUpdatePhone:         "Update Phone",
		KeyDeletePhone:         "Delete Phone",
		KeyClearFields:         "Clear Fields",
		KeyModeCreate:          "New phone",
		KeyModeEdit:            "Editing phone #%d",
		KeySuccess:             "Success",
		KeyError:               "Error",
		KeyAllFieldsRequired:   "All fields must be filled",
		KeyInvalidPrice:        "Invalid price value",
		KeyNoPhoneSelected:     "No phone selected",
		KeyPhoneAdded:          "Phone added successfully",
		KeyPhoneUpdated:        "Phone updated successfully",
		KeyPhoneDeleted:        "Phone deleted successfully",
		KeyDatabaseError:       "Database error",
		KeyFile:                "File",
		KeySettings:            "Settings",
		KeyLanguage:            "Language",
		KeyShowDatabase:        "Show Database File",
		KeyDatabasePath:        "Database File",
		KeyStorageBackend:      "Storage Backend",
		KeyShowSuccessMessages: "Confirm successful changes",
		KeyLogLevel:            "Log Level",
		KeySave:                "Save",
		KeyCancel:              "Cancel",
		KeyBrowse:              "Browse",
		KeySettingsSaved:       "Settings saved successfully!",
		KeyRestartRequired:     "Storage and log level changes take effect after restart.",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:            "Характеристики телефонов",
		KeyBrand:               "Бренд",
		KeyModel:               "Модель",
		KeyPrice:               "Цена",
		KeyOS:                  "ОС",
		KeyRAM:                 "ОЗУ",
		KeyID:                  "ID",
		KeyAddPhone:            "Добавить",
		KeyUpdatePhone:         "Обновить",
		KeyDeletePhone:         "Удалить",
		KeyClearFields:         "Очистить поля",
		KeyModeCreate:          "Новый телефон",
		KeyModeEdit:            "Редактирование телефона #%d",
		KeySuccess:             "Готово",
		KeyError:               "Ошибка",
		KeyAllFieldsRequired:   "Все поля должны быть заполнены",
		KeyInvalidPrice:        "Неверное значение цены",
		KeyNoPhoneSelected:     "Телефон не выбран",
		KeyPhoneAdded:          "Телефон успешно добавлен",
		KeyPhoneUpdated:        "Телефон успешно обновлён",
		KeyPhoneDeleted:        "Телефон успешно удалён",
		KeyDatabaseError:       "Ошибка базы данных",
		KeyFile:                "Файл",
		KeySettings:            "Настройки",
		KeyLanguage:            "Язык",
		KeyShowDatabase:        "Показать файл базы",
		KeyDatabasePath:        "Файл базы данных",
		KeyStorageBackend:      "Хранилище",
		KeyShowSuccessMessages: "Подтверждать успешные изменения",
		KeyLogLevel:            "Уровень журнала",
		KeySave:                "Сохранить",
		KeyCancel:              "Отмена",
		KeyBrowse:              "Обзор",
		KeySettingsSaved:       "Настройки успешно сохранены!",
		KeyRestartRequired:     "Изменения хранилища и уровня журнала вступят в силу после перезапуска.",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:            "Especificações de Telefones",
		KeyBrand:               "Marca",
		KeyModel:               "Modelo",
		KeyPrice:               "Preço",
		KeyOS:                  "SO",
		KeyRAM:                 "RAM",
		KeyID:                  "ID",
		KeyAddPhone:            "Adicionar",
		KeyUpdatePhone:         "Atualizar",
		KeyDeletePhone:         "Excluir",
		KeyClearFields:         "Limpar Campos",
		KeyModeCreate:          "Novo telefone",
		KeyModeEdit:            "Editando telefone #%d",
		KeySuccess:             "Sucesso",
		KeyError:               "Erro",
		KeyAllFieldsRequired:   "Todos os campos devem ser preenchidos",
		KeyInvalidPrice:        "Valor de preço inválido",
		KeyNoPhoneSelected:     "Nenhum telefone selecionado",
		KeyPhoneAdded:          "Telefone adicionado com sucesso",
		KeyPhoneUpdated:        "Telefone atualizado com sucesso",
		KeyPhoneDeleted:        "Telefone excluído com sucesso",
		KeyDatabaseError:       "Erro de banco de dados",
		KeyFile:                "Arquivo",
		KeySettings:            "Configurações",
		KeyLanguage:            "Idioma",
		KeyShowDatabase:        "Mostrar Arquivo do Banco",
		KeyDatabasePath:        "Arquivo do Banco de Dados",
		KeyStorageBackend:      "Armazenamento",
		KeyShowSuccessMessages: "Confirmar alterações bem-sucedidas",
		KeyLogLevel:            "Nível de log",
		KeySave:                "Salvar",
		KeyCancel:              "Cancelar",
		KeyBrowse:              "Navegar",
		KeySettingsSaved:       "Configurações salvas com sucesso!",
		KeyRestartRequired:     "Alterações de armazenamento e nível de log entram em vigor após reiniciar.",
	}
}
