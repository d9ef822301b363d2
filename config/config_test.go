package config

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/kasuboski/watchlist/config/mocks"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	t.Run("fail to read in config", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cu := mocks.NewMockConfigUnmarshaler(ctrl)

		wantErr := errors.New("expected testing error")
		cu.EXPECT().ConfigFileUsed().Times(1).Return("fake-config.yaml")
		cu.EXPECT().ReadInConfig().Times(1).Return(wantErr)
		c, err := New(cu)
		if err == nil {
			t.Errorf("TestNew() err = %v, want %v", err, wantErr)
		}

		wantConfig := Config{}
		if !reflect.DeepEqual(c, wantConfig) {
			t.Errorf("TestNew() config = %v, want %v", c, wantConfig)
		}
	})

	t.Run("fail to unmarshal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cu := mocks.NewMockConfigUnmarshaler(ctrl)

		wantErr := errors.New("expected testing error")
		cu.EXPECT().ConfigFileUsed().Times(1).Return("")
		cu.EXPECT().Unmarshal(gomock.Any()).Times(1).Return(wantErr)
		_, err := New(cu)
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("success with file", func(t *testing.T) {
		cu := viper.New()
		cu.SetConfigFile("./testing/config.yaml")
		c, err := New(cu)
		if err != nil {
			t.Errorf("TestNew() err = %v, want %v", err, nil)
		}

		wantConfig := Config{
			TMDB: TMDB{
				URI:    "https://my-host",
				APIKey: "my-api-key",
			},
			OMDb: OMDb{
				APIKey: "my-omdb-key",
			},
			Ombi: Ombi{
				URI:             "http://ombi.local:3579",
				APIKey:          "my-ombi-key",
				RequestOnBehalf: "me",
			},
			Storage: Storage{
				MovieTable: "my_movies",
			},
		}

		if !reflect.DeepEqual(c, wantConfig) {
			t.Errorf("TestNew() config = %+v, want %+v", c, wantConfig)
		}
	})

	t.Run("success without file", func(t *testing.T) {
		cu := viper.New()
		cu.SetConfigFile("")
		cu.SetDefault("tmdb.uri", "https://api.themoviedb.org")
		cu.SetDefault("manager.jobs.backdropRefresh", time.Hour)
		c, err := New(cu)
		if err != nil {
			t.Errorf("TestNew() err = %v, want %v", err, nil)
		}

		wantConfig := Config{
			TMDB: TMDB{
				URI: "https://api.themoviedb.org",
			},
			Manager: Manager{
				Jobs: Jobs{BackdropRefresh: time.Hour},
			},
		}

		if !reflect.DeepEqual(c, wantConfig) {
			t.Errorf("TestNew() config = %+v, want %+v", c, wantConfig)
		}
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:   "zero value",
			config: Config{},
		},
		{
			name: "sqlite with custom tables",
			config: Config{
				Storage: Storage{Driver: StorageDriverSQLite, MovieTable: "my_movies", SeriesTable: "shows"},
			},
		},
		{
			name: "mysql without dsn",
			config: Config{
				Storage: Storage{Driver: StorageDriverMySQL},
			},
			wantErr: true,
		},
		{
			name: "unknown driver",
			config: Config{
				Storage: Storage{Driver: "postgres"},
			},
			wantErr: true,
		},
		{
			name: "table name with sql",
			config: Config{
				Storage: Storage{MovieTable: "movies; DROP TABLE series"},
			},
			wantErr: true,
		},
		{
			name: "bad port",
			config: Config{
				Server: Server{Port: 70000},
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
