package deps

import (
	"context"
	"fmt"
	"sync"
	"time"
	"unitactivity/internal/config"
	"unitactivity/internal/core/domain/identity"
	dl "unitactivity/internal/core/domain/logging"
	"unitactivity/internal/core/domain/mail"
	dbidentity "unitactivity/internal/db/identity"
	"unitactivity/internal/implementations/email"
	"unitactivity/internal/implementations/logging"
	"unitactivity/internal/implementations/metrics"
	passwordhasher "unitactivity/internal/implementations/password_hasher"
	supabaseadmin "unitactivity/internal/implementations/supabase_admin"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/getsentry/sentry-go"
	"github.com/jackc/pgx/v4/pgxpool"
)

type Deps struct {
	Config  *config.Config
	Logger  dl.Logger
	Metrics *metrics.PrometheusRecorder

	DB *pgxpool.Pool

	Now func() time.Time

	UserRepository  identity.Repository
	AdminRepository identity.Repository
	PasswordHasher  identity.PasswordHasher
	CredentialAdmin identity.CredentialAdmin

	EmailRenderer mail.Renderer
	EmailSender   mail.Sender
	EmailReady    bool
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()

	closeLogger := deps.initLogger()
	flushSentry := deps.initSentry()
	closePgxPool := deps.initPgxPool()

	deps.Now = func() time.Time { return time.Now().UTC() }
	deps.Metrics = metrics.NewPrometheusRecorder()

	deps.UserRepository = dbidentity.NewPgxRepository(deps.DB, identity.KindUser, dbidentity.UsersTable)
	deps.AdminRepository = dbidentity.NewPgxRepository(deps.DB, identity.KindAdmin, dbidentity.AdminTable)
	deps.PasswordHasher = passwordhasher.NewBcrypt(deps.Config.PasswordPepper, deps.Config.BcryptHasherCost)
	deps.CredentialAdmin = deps.initCredentialAdmin()

	deps.EmailRenderer = email.NewTemplateRenderer()
	deps.EmailSender = deps.initEmailSender()
	deps.EmailReady = email.VerifySender(context.Background(), deps.Logger, deps.EmailSender)

	return deps, func() {
		closeFuncs := []func(){
			closePgxPool,
			flushSentry,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
		closeLogger()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger(deps.Config.IsTestMode)
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initSentry() func() {
	if deps.Config.SentryDsn != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              deps.Config.SentryDsn,
			TracesSampleRate: 0.01,
		})
		if err != nil {
			panic(fmt.Sprintf("could not init Sentry: %v\n", err))
		}
		deps.Logger = logging.NewSentryLogger(deps.Logger, sentry.CurrentHub())
		deps.Logger.Info(context.Background(), "Sentry has been successfully initialized.")
		return func() {
			ok := sentry.Flush(5 * time.Second)
			deps.Logger.Info(context.Background(), "Sentry events flushed.", dl.Entry("ok", ok))
		}
	}

	deps.Logger.Info(context.Background(), "Sentry is disabled.")
	return func() {}
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initCredentialAdmin() identity.CredentialAdmin {
	client, err := supabaseadmin.New(
		deps.Config.SupabaseURL,
		deps.Config.SupabaseServiceRoleKey,
		deps.Config.SupabaseRequestTimeout,
	)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create auth admin client.", dl.Entry("err", err))
		panic(err)
	}
	return client
}

func (deps *Deps) initEmailSender() mail.Sender {
	sender, err := NewEmailSender(context.Background(), deps.Config, deps.Now)
	if err != nil {
		deps.Logger.Error(
			context.Background(),
			"Email settings are unusable, every send will fail until they are fixed.",
			dl.Entry("provider", deps.Config.EmailProvider),
			dl.Entry("err", err),
		)
	}
	return sender
}

// NewEmailSender builds the configured mail provider. Unusable settings never
// fail startup: the returned sender then reports the settings error on every
// call, together with the error itself.
func NewEmailSender(ctx context.Context, cfg *config.Config, now func() time.Time) (mail.Sender, error) {
	if err := cfg.MailSettingsError(); err != nil {
		return email.NewUnavailableSender(cfg.EmailProvider, err), err
	}

	if cfg.EmailProvider == config.EmailProviderSES {
		awsCfg, err := loadAwsConfig(ctx, cfg)
		if err != nil {
			return email.NewUnavailableSender(cfg.EmailProvider, err), err
		}
		return email.NewSESSender(awsCfg, cfg.EmailFrom, cfg.EmailFromName), nil
	}

	sender, err := email.NewSMTPSender(
		email.SMTPConfig{
			Host:     cfg.EmailHost,
			Port:     cfg.EmailPort,
			Username: cfg.EmailUser,
			Password: cfg.EmailPass,
			From:     cfg.EmailFrom,
			FromName: cfg.EmailFromName,
			Timeout:  cfg.EmailTimeout,
		},
		now,
	)
	if err != nil {
		return email.NewUnavailableSender(cfg.EmailProvider, err), err
	}
	return sender, nil
}

func loadAwsConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsConfig.LoadDefaultConfig(
		ctx,
		awsConfig.WithRegion(cfg.AwsRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AwsAccessKey, cfg.AwsSecretKey, ""),
		),
		awsConfig.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(retry.NewStandard(), 1)
		}),
	)
}
