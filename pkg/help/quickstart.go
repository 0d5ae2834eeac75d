package help

const QuickstartYAML = `# skillshell Quick Start

files:
  pages_dir: "Body fragments, one *.html per route (index.html -> /, about.html -> /about)"
  config: "skillshell.yaml - optional metadata overrides and paths"

commands:
  preview_one: |
    skillshell render --page pages/index.html > index.html

  build_site: |
    skillshell build --pages pages --output-dir skillshell-out

  serve_locally: |
    skillshell serve --listen 127.0.0.1:8080

  check_document: |
    skillshell inspect skillshell-out/index.html
    skillshell inspect http://127.0.0.1:8080/about

  effective_metadata: |
    skillshell metadata

  build_history: |
    skillshell history
    skillshell history show 3

shell:
  lang: "en"
  theme_color: "#FF4444"
  icon: "/favicon.ico"

exit_codes:
  0: "success"
  1: "inspect found problems, or a page failed to build"
  2: "invalid config or usage"
`
