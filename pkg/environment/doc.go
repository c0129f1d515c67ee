// Package environment carries the deployment environment (development,
// staging, production) through configuration, request contexts and logs.
//
// Parse turns the APP_ENV value into an Environment and Middleware stores it
// on each request. logger.WithEnvironment tags every record with it:
//
//	env := environment.Parse(cfg.Env)
//	log := logger.New(logger.WithEnvironment(env, "fieldcheck"))
//	h := environment.Middleware(env)(router)
package environment
