package config

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

var (
	once         sync.Once
	cachedConfig AppConfig
)

type AppConfig struct {
	API            APIConfig     `mapstructure:"api"`
	Leagues        LeaguesConfig `mapstructure:"leagues"`
	Files          FilesConfig   `mapstructure:"files"`
	DefaultCommand string        `mapstructure:"default_command"`
}

type APIConfig struct {
	FixturesURL  string `mapstructure:"fixtures_url"`
	StandingsURL string `mapstructure:"standings_url"`
	TeamsURL     string `mapstructure:"teams_url"`
	Host         string `mapstructure:"host"`
	Key          string `mapstructure:"key"`
	Timeout      int    `mapstructure:"timeout"`
	Season       int    `mapstructure:"season"`
}

type LeaguesConfig struct {
	// Preferred drives the schedule and standings batches; All is the
	// superset hyphen-joined into the aggregate live query.
	Preferred []int `mapstructure:"preferred"`
	All       []int `mapstructure:"all"`
}

type FilesConfig struct {
	Roster string `mapstructure:"roster"`
	Colors string `mapstructure:"colors"`
}

// ProvideAppConfig loads defaults, an optional configs/common.yml and
// FOOTY_-prefixed environment overrides, once per process. The API key has
// no default on purpose: it only ever comes from the environment.
func ProvideAppConfig() (AppConfig, error) {
	var err error
	once.Do(func() {
		viper.SetEnvPrefix("footy")
		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

		setDefaults()

		viper.AddConfigPath("configs")
		viper.SetConfigName("common")
		viper.SetConfigType("yml")
		if readErr := viper.ReadInConfig(); readErr != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(readErr, &notFound) {
				err = readErr
				return
			}
		}

		BindEnvs(cachedConfig)

		hooks := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToSliceHookFunc(","),
		))
		err = viper.Unmarshal(&cachedConfig, hooks)
	})

	return cachedConfig, err
}

func setDefaults() {
	viper.SetDefault("api.fixtures_url", "https://api-football-v1.p.rapidapi.com/v3/fixtures")
	viper.SetDefault("api.standings_url", "https://api-football-v1.p.rapidapi.com/v3/standings")
	viper.SetDefault("api.teams_url", "https://api-football-v1.p.rapidapi.com/v3/teams")
	viper.SetDefault("api.host", "api-football-v1.p.rapidapi.com")
	viper.SetDefault("api.timeout", 10)
	viper.SetDefault("api.season", 2023)

	// Premier League, La Liga, Serie A, Bundesliga, Ligue 1.
	viper.SetDefault("leagues.preferred", []int{39, 140, 135, 78, 61})
	// Preferred plus the cups and European competitions worth a live check.
	viper.SetDefault("leagues.all", []int{39, 140, 135, 78, 61, 2, 3, 45, 48, 143})

	viper.SetDefault("files.roster", "data/favorites.csv")
	viper.SetDefault("files.colors", "data/team_colors.csv")

	viper.SetDefault("default_command", "schedule")
}

func BindEnvs(iface interface{}, parts ...string) {
	ifv := reflect.ValueOf(iface)
	ift := reflect.TypeOf(iface)
	for i := 0; i < ift.NumField(); i++ {
		v := ifv.Field(i)
		t := ift.Field(i)
		tv, ok := t.Tag.Lookup("mapstructure")
		if !ok {
			continue
		}
		switch v.Kind() {
		case reflect.Struct:
			BindEnvs(v.Interface(), append(parts, tv)...)
		default:
			viper.BindEnv(strings.Join(append(parts, tv), "."))
		}
	}
}
