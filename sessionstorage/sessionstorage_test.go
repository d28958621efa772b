package sessionstorage

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/cccteam/dbsession/sessionstorage/internal/dbtype"
	"github.com/cccteam/dbsession/sessionstorage/mock/mock_sessionstorage"
	"github.com/cccteam/httpio"
	"github.com/go-playground/errors/v5"
	"github.com/google/go-cmp/cmp"
	gomock "go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, time.March, 4, 12, 0, 0, 0, time.UTC)

func newTestStore(mockDB *mock_sessionstorage.Mockdb) *Store {
	s := newStore(mockDB)
	s.SetClock(func() time.Time { return fixedNow })

	return s
}

func TestStore_Read(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		sessionID    string
		prepare      func(mockDB *mock_sessionstorage.Mockdb)
		want         string
		wantErr      bool
		wantNotFound bool
	}{
		{
			name:      "success",
			sessionID: "abc",
			prepare: func(mockDB *mock_sessionstorage.Mockdb) {
				mockDB.EXPECT().SessionData(gomock.Any(), "abc").Return("payload", nil)
			},
			want: "payload",
		},
		{
			name:      "not found",
			sessionID: "missing",
			prepare: func(mockDB *mock_sessionstorage.Mockdb) {
				mockDB.EXPECT().SessionData(gomock.Any(), "missing").Return("", httpio.NewNotFoundMessagef("session %q not found", "missing"))
			},
			wantErr:      true,
			wantNotFound: true,
		},
		{
			name:      "db error",
			sessionID: "abc",
			prepare: func(mockDB *mock_sessionstorage.Mockdb) {
				mockDB.EXPECT().SessionData(gomock.Any(), "abc").Return("", errors.New("connection refused"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			mockDB := mock_sessionstorage.NewMockdb(ctrl)
			tt.prepare(mockDB)

			got, err := newTestStore(mockDB).Read(context.Background(), tt.sessionID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Store.Read() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got := httpio.HasNotFound(err); got != tt.wantNotFound {
				t.Errorf("httpio.HasNotFound() = %v, want %v", got, tt.wantNotFound)
			}
			if got != tt.want {
				t.Errorf("Store.Read() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStore_Session(t *testing.T) {
	t.Parallel()

	data := "payload"
	tests := []struct {
		name    string
		prepare func(mockDB *mock_sessionstorage.Mockdb)
		want    *Record
		wantErr bool
	}{
		{
			name: "success",
			prepare: func(mockDB *mock_sessionstorage.Mockdb) {
				mockDB.EXPECT().Session(gomock.Any(), "abc").Return(&dbtype.Session{ID: "abc", Data: &data, Time: fixedNow.Unix()}, nil)
			},
			want: &Record{ID: "abc", Data: "payload", LastActivity: time.Unix(fixedNow.Unix(), 0)},
		},
		{
			name: "null data",
			prepare: func(mockDB *mock_sessionstorage.Mockdb) {
				mockDB.EXPECT().Session(gomock.Any(), "abc").Return(&dbtype.Session{ID: "abc", Time: 10}, nil)
			},
			want: &Record{ID: "abc", LastActivity: time.Unix(10, 0)},
		},
		{
			name: "db error",
			prepare: func(mockDB *mock_sessionstorage.Mockdb) {
				mockDB.EXPECT().Session(gomock.Any(), "abc").Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			mockDB := mock_sessionstorage.NewMockdb(ctrl)
			tt.prepare(mockDB)

			got, err := newTestStore(mockDB).Session(context.Background(), "abc")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Store.Session() error = %v, wantErr %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Store.Session() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStore_Write(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		writeMode WriteMode
		prepare   func(mockDB *mock_sessionstorage.Mockdb)
		want      int64
		wantErr   bool
	}{
		{
			name:      "update existing row",
			writeMode: WriteModeUpdate,
			prepare: func(mockDB *mock_sessionstorage.Mockdb) {
				mockDB.EXPECT().UpdateSessionData(gomock.Any(), "abc", "payload", fixedNow.Unix()).Return(int64(1), nil)
			},
			want: 1,
		},
		{
			name:      "update missing row is not an error",
			writeMode: WriteModeUpdate,
			prepare: func(mockDB *mock_sessionstorage.Mockdb) {
				mockDB.EXPECT().UpdateSessionData(gomock.Any(), "abc", "payload", fixedNow.Unix()).Return(int64(0), nil)
			},
			want: 0,
		},
		{
			name:      "upsert",
			writeMode: WriteModeUpsert,
			prepare: func(mockDB *mock_sessionstorage.Mockdb) {
				mockDB.EXPECT().UpsertSessionData(gomock.Any(), "abc", "payload", fixedNow.Unix()).Return(int64(1), nil)
			},
			want: 1,
		},
		{
			name:      "update db error",
			writeMode: WriteModeUpdate,
			prepare: func(mockDB *mock_sessionstorage.Mockdb) {
				mockDB.EXPECT().UpdateSessionData(gomock.Any(), "abc", "payload", fixedNow.Unix()).Return(int64(0), errors.New("db error"))
			},
			wantErr: true,
		},
		{
			name:      "upsert db error",
			writeMode: WriteModeUpsert,
			prepare: func(mockDB *mock_sessionstorage.Mockdb) {
				mockDB.EXPECT().UpsertSessionData(gomock.Any(), "abc", "payload", fixedNow.Unix()).Return(int64(0), errors.New("db error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			mockDB := mock_sessionstorage.NewMockdb(ctrl)
			tt.prepare(mockDB)

			s := newTestStore(mockDB)
			s.SetWriteMode(tt.writeMode)

			got, err := s.Write(context.Background(), "abc", "payload")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Store.Write() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Store.Write() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStore_Destroy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		prepare func(mockDB *mock_sessionstorage.Mockdb)
		want    int64
		wantErr bool
	}{
		{
			name: "success",
			prepare: func(mockDB *mock_sessionstorage.Mockdb) {
				mockDB.EXPECT().DeleteSession(gomock.Any(), "abc").Return(int64(1), nil)
			},
			want: 1,
		},
		{
			name: "absent session",
			prepare: func(mockDB *mock_sessionstorage.Mockdb) {
				mockDB.EXPECT().DeleteSession(gomock.Any(), "abc").Return(int64(0), nil)
			},
		},
		{
			name: "db error",
			prepare: func(mockDB *mock_sessionstorage.Mockdb) {
				mockDB.EXPECT().DeleteSession(gomock.Any(), "abc").Return(int64(0), errors.New("db error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			mockDB := mock_sessionstorage.NewMockdb(ctrl)
			tt.prepare(mockDB)

			got, err := newTestStore(mockDB).Destroy(context.Background(), "abc")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Store.Destroy() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Store.Destroy() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStore_CollectGarbage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		maxLifetime int64
		batchSize   int
		prepare     func(mockDB *mock_sessionstorage.Mockdb)
		want        int64
		wantErr     bool
	}{
		{
			name:        "default lifetime",
			maxLifetime: 1440,
			prepare: func(mockDB *mock_sessionstorage.Mockdb) {
				mockDB.EXPECT().DeleteExpiredSessions(gomock.Any(), fixedNow.Unix()-1440, 0).Return(int64(3), nil)
			},
			want: 3,
		},
		{
			name:        "batched",
			maxLifetime: 3600,
			batchSize:   500,
			prepare: func(mockDB *mock_sessionstorage.Mockdb) {
				mockDB.EXPECT().DeleteExpiredSessions(gomock.Any(), fixedNow.Unix()-3600, 500).Return(int64(1200), nil)
			},
			want: 1200,
		},
		{
			name:        "nothing expired",
			maxLifetime: 60,
			prepare: func(mockDB *mock_sessionstorage.Mockdb) {
				mockDB.EXPECT().DeleteExpiredSessions(gomock.Any(), fixedNow.Unix()-60, 0).Return(int64(0), nil)
			},
		},
		{
			name:        "lifetime beyond duration range",
			maxLifetime: 10_000_000_000,
			prepare: func(mockDB *mock_sessionstorage.Mockdb) {
				mockDB.EXPECT().DeleteExpiredSessions(gomock.Any(), fixedNow.Unix()-10_000_000_000, 0).Return(int64(0), nil)
			},
		},
		{
			name:        "max lifetime",
			maxLifetime: math.MaxInt64,
			prepare: func(mockDB *mock_sessionstorage.Mockdb) {
				mockDB.EXPECT().DeleteExpiredSessions(gomock.Any(), fixedNow.Unix()-math.MaxInt64, 0).Return(int64(0), nil)
			},
		},
		{
			name:        "db error",
			maxLifetime: 60,
			prepare: func(mockDB *mock_sessionstorage.Mockdb) {
				mockDB.EXPECT().DeleteExpiredSessions(gomock.Any(), fixedNow.Unix()-60, 0).Return(int64(0), errors.New("db error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			mockDB := mock_sessionstorage.NewMockdb(ctrl)
			tt.prepare(mockDB)

			s := newTestStore(mockDB)
			s.SetGCBatchSize(tt.batchSize)

			got, err := s.CollectGarbage(context.Background(), tt.maxLifetime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Store.CollectGarbage() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Store.CollectGarbage() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStore_SetSessionTableName(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockDB := mock_sessionstorage.NewMockdb(ctrl)
	mockDB.EXPECT().SetSessionTableName("jos_session")

	s := newTestStore(mockDB)
	s.SetSessionTableName("jos_session")
	if s.tableName != "jos_session" {
		t.Errorf("SetSessionTableName() = %v, want %v", s.tableName, "jos_session")
	}
}

func TestWriteMode_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode WriteMode
		want string
	}{
		{mode: WriteModeUpdate, want: "update"},
		{mode: WriteModeUpsert, want: "upsert"},
		{mode: WriteMode(42), want: "unknown"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("WriteMode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}
