// @title           Lye API
// @version         1.0
// @description     API para compartir investigaciones estudiantiles.
// @contact.name    Plataforma Lye
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:5000
// @BasePath        /

package main

import "lye_backend/internal/app"

func main() {
	app.Run()
}
